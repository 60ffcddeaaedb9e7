package main

import (
	"fmt"
	"strconv"

	"github.com/eoproto/eowire"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "hash <challenge>",
		Short: "compute the server verification hash",
		Args:  cobra.ExactArgs(1),
	}
	Root.AddCommand(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		fmt.Println(eowire.ServerVerificationHash(v))
		return nil
	}
}
