package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/eoproto/eowire"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "number",
		Short: "encode and decode protocol numbers",
	}
	Root.AddCommand(cmd)

	enc := &cobra.Command{
		Use:   "encode <value>",
		Short: "encode a number to its wire bytes (hex)",
		Args:  cobra.ExactArgs(1),
	}
	cmd.AddCommand(enc)
	fEncWide := enc.Flags().Bool("wide", false, "use the 5-byte encoding")
	enc.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		if *fEncWide {
			b := eowire.EncodeNumber64(v)
			fmt.Println(hex.EncodeToString(b[:]))
			return nil
		}
		b, err := eowire.EncodeNumber(int(v))
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(b[:]))
		return nil
	}

	dec := &cobra.Command{
		Use:   "decode <hex>",
		Short: "decode wire bytes (hex) to a number",
		Args:  cobra.ExactArgs(1),
	}
	cmd.AddCommand(dec)
	fDecWide := dec.Flags().Bool("wide", false, "use the 5-byte encoding")
	dec.RunE = func(cmd *cobra.Command, args []string) error {
		b, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		if *fDecWide {
			fmt.Println(eowire.DecodeNumber64(b))
		} else {
			fmt.Println(eowire.DecodeNumber(b))
		}
		return nil
	}
}
