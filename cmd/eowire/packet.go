package main

import (
	"encoding/hex"
	"fmt"

	"github.com/eoproto/eowire"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "packet",
		Short: "obfuscate and deobfuscate packet payloads",
	}
	Root.AddCommand(cmd)

	enc := &cobra.Command{
		Use:   "encrypt <hex>",
		Short: "obfuscate a payload for the wire",
		Args:  cobra.ExactArgs(1),
	}
	cmd.AddCommand(enc)
	fEncKey := enc.Flags().IntP("key", "k", 6, "swap multiple (6-12)")
	enc.RunE = func(cmd *cobra.Command, args []string) error {
		buf, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		eowire.EncryptPacket(buf, *fEncKey)
		fmt.Println(hex.EncodeToString(buf))
		return nil
	}

	dec := &cobra.Command{
		Use:   "decrypt <hex>",
		Short: "deobfuscate a payload from the wire",
		Args:  cobra.ExactArgs(1),
	}
	cmd.AddCommand(dec)
	fDecKey := dec.Flags().IntP("key", "k", 6, "swap multiple (6-12)")
	fDecMagic := dec.Flags().Int("magic", 0, "handshake magic value")
	dec.RunE = func(cmd *cobra.Command, args []string) error {
		buf, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		eowire.DecryptPacket(buf, *fDecKey, *fDecMagic)
		fmt.Println(hex.EncodeToString(buf))
		return nil
	}
}
