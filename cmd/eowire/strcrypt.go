package main

import (
	"fmt"

	"github.com/eoproto/eowire"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "string",
		Short: "legacy string cipher",
	}
	Root.AddCommand(cmd)

	enc := &cobra.Command{
		Use:   "encrypt <text>",
		Args:  cobra.ExactArgs(1),
	}
	cmd.AddCommand(enc)
	fEncKey := enc.Flags().IntP("key", "k", eowire.LoginRequestEncryptionKey, "packet key")
	enc.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fmt.Println(eowire.EncryptString(args[0], *fEncKey))
		return nil
	}

	dec := &cobra.Command{
		Use:   "decrypt <text>",
		Args:  cobra.ExactArgs(1),
	}
	cmd.AddCommand(dec)
	fDecKey := dec.Flags().IntP("key", "k", eowire.LoginRequestEncryptionKey, "packet key")
	dec.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fmt.Println(eowire.DecryptString(args[0], *fDecKey))
		return nil
	}
}
