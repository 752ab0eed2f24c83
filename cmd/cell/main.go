// cell - CELL coordinate notation CLI
//
// Usage:
//
//	cell parse <cell>        Decode a CELL string into 0-based indices
//	cell format <i> [j [k]]  Encode 0-based indices into a CELL string
//	cell validate [file]     Check CELL strings, one per line
//	cell version             Print version info
//
// validate reads from stdin when no file is given (or when the file is "-").
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boardkit/cell/cell"
)

const (
	libVersion      = "1.0.0"
	notationVersion = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "cell",
	Short: "Convert between CELL notation and numeric board coordinates",
	Long: `cell converts between CELL notation and numeric board coordinates.

A CELL string encodes 1 to 3 indices in [0,255], cycling through lowercase
letters, a 1-based integer, and uppercase letters: "a" is [0], "e4" is
[4 3], "iv256IV" is [255 255 255].`,
	SilenceUsage: true,
}

var parseCmd = &cobra.Command{
	Use:   "parse <cell>",
	Short: "Decode a CELL string into 0-based indices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cell.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}
		parts := make([]string, 0, c.Dimensions())
		for _, v := range c.Indices() {
			parts = append(parts, strconv.Itoa(v))
		}
		fmt.Println(strings.Join(parts, " "))
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <index>...",
	Short: "Encode 0-based indices into a CELL string",
	Args:  cobra.RangeArgs(1, cell.MaxDimensions),
	RunE: func(cmd *cobra.Command, args []string) error {
		indices := make([]int, len(args))
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("index %q: not an integer", arg)
			}
			indices[i] = v
		}
		s, err := cell.Format(indices...)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate CELL strings, one per line",
	Long: `Validate reads CELL strings one per line, prints a verdict for each,
and exits non-zero if any line is invalid. Blank lines are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	var input io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	checked, invalid := 0, 0
	sc := bufio.NewScanner(input)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		checked++
		if _, err := cell.Parse(line); err != nil {
			invalid++
			fmt.Printf("%s\tinvalid: %v\n", line, err)
		} else {
			fmt.Printf("%s\tok\n", line)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%d checked, %d invalid\n", checked, invalid)
	if invalid > 0 {
		return fmt.Errorf("%d of %d strings invalid", invalid, checked)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cell %s (CELL notation %s)\n", libVersion, notationVersion)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd, formatCmd, validateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
