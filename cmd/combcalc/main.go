// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command combcalc evaluates signal expressions on the concrete bits
// backend: constant parsing, bit counts and encodings.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spalmer/comb"
	"github.com/spalmer/comb/bits"
)

var rootCmd = &cobra.Command{
	Use:   "combcalc",
	Short: "A calculator over width-typed bit vectors.",
	Long: "combcalc parses sized constants (binary or Verilog-style) and " +
		"evaluates bit-level operations on them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Print("combcalc ")
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Println(info.Main.Version)
			} else {
				fmt.Println("(unknown version)")
			}
			return
		}
		_ = cmd.Help()
	},
}

// eval parses a literal, turning operator panics into clean exits.
func eval(c *comb.Comb[bits.Bits], s string) bits.Bits {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("%s: %v", s, r)
		}
	}()
	x := c.Const(s)
	log.Debugf("parsed %q as %d-bit %s", s, c.Width(x), c.ToBstr(x))
	return x
}

// hexString formats a bit pattern as hex, a nibble per digit.
func hexString(s string) string {
	for len(s)%4 != 0 {
		s = "0" + s
	}
	out := make([]byte, 0, len(s)/4)
	for i := 0; i < len(s); i += 4 {
		v, _ := strconv.ParseUint(s[i:i+4], 2, 8)
		out = append(out, "0123456789abcdef"[v])
	}
	return string(out)
}

var litCmd = &cobra.Command{
	Use:   "lit <constant>",
	Short: "Parse a constant and print it in several bases.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := bits.New()
		x := eval(c, args[0])
		fmt.Printf("width    %d\n", c.Width(x))
		fmt.Printf("binary   %s\n", c.ToBstr(x))
		fmt.Printf("hex      %s\n", hexString(c.ToBstr(x)))
		if c.Width(x) <= 64 {
			fmt.Printf("unsigned %d\n", c.ToUint64(x))
			fmt.Printf("signed   %d\n", c.ToSInt64(x))
		}
	},
}

var popcountCmd = &cobra.Command{
	Use:   "popcount <constant>",
	Short: "Count the set bits of a constant.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := bits.New()
		x := eval(c, args[0])
		fmt.Println(c.ToUint64(c.Popcount(x)))
	},
}

var grayCmd = &cobra.Command{
	Use:   "gray <constant>",
	Short: "Convert binary to Gray code (or back with --decode).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := bits.New()
		x := eval(c, args[0])
		if d, _ := cmd.Flags().GetBool("decode"); d {
			fmt.Println(c.ToBstr(c.GrayToBinary(x)))
		} else {
			fmt.Println(c.ToBstr(c.BinaryToGray(x)))
		}
	},
}

var onehotCmd = &cobra.Command{
	Use:   "onehot <constant>",
	Short: "Expand binary to one-hot (or encode back with --decode).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := bits.New()
		x := eval(c, args[0])
		if d, _ := cmd.Flags().GetBool("decode"); d {
			fmt.Println(c.ToBstr(c.OnehotToBinary(x)))
		} else {
			fmt.Println(c.ToBstr(c.BinaryToOnehot(x)))
		}
	},
}

var randCmd = &cobra.Command{
	Use:   "rand <width>",
	Short: "Print a deterministic random constant of the given width.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		w, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("width %q: %v", args[0], err)
		}
		defer func() {
			if r := recover(); r != nil {
				log.Fatalf("rand: %v", r)
			}
		}()
		seed, _ := cmd.Flags().GetUint64("seed")
		c := bits.New()
		c.SeedRand(seed)
		fmt.Println(c.ToBstr(c.Srand(w)))
	},
}

func main() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.Flags().Bool("version", false, "print version information")
	grayCmd.Flags().Bool("decode", false, "convert Gray code back to binary")
	onehotCmd.Flags().Bool("decode", false, "encode a one-hot vector back to binary")
	randCmd.Flags().Uint64("seed", 1, "generator seed")
	rootCmd.AddCommand(litCmd, popcountCmd, grayCmd, onehotCmd, randCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
