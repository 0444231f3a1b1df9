// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/roomtree/avltree"
)

func main() {
	InitializeColors()

	asciiLogo := `
 ___  ___   ___  __  __ _____ ___ ___ ___
| _ \/ _ \ / _ \|  \/  |_   _| _ \ __| __|
|   / (_) | (_) | |\/| | | | |   / _|| _|
|_|_\___/ \___/|_|  |_| |_| |_|_\___|___|
Balanced room lookup for classroom data files [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = defaults()
	}

	runProgram := func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			config.Data.Verbose = false
		}
		if err := runDemo(os.Stdout, resolveDataFile(args, config), config); err != nil {
			log.Fatalf("Error running program: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run [file]",
		Short: "Load a room data file, display it, copy it and clear it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run loads the rooms into a tree, prints them in order, duplicates the tree and prints the copy`),
		Args:  cobra.MaximumNArgs(1),
		Run:   runProgram,
	}
	cmdRun.Flags().BoolP("quiet", "q", false, "do not report each insertion")

	var cmdSearch = &cobra.Command{
		Use:   "search [file]",
		Short: "Look up rooms by room number",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, _ := cmd.Flags().GetStringSlice("key")
			if len(keys) == 0 {
				log.Fatalf("Nothing to search for. Use --key <room number>")
			}

			tree := mustLoad(resolveDataFile(args, config), config)
			index := NewRoomIndex(tree, config.Search.BloomSize, config.Search.BloomHashes)
			if found := searchRooms(os.Stdout, index, keys); found < len(keys) {
				os.Exit(1)
			}
		},
	}
	cmdSearch.Flags().StringSliceP("key", "k", nil, "room number to look up (repeatable)")

	var cmdTree = &cobra.Command{
		Use:   "tree [file]",
		Short: "Draw the room tree",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printData, _ := cmd.Flags().GetBool("data")
			tree := mustLoad(resolveDataFile(args, config), config)
			depth := tree.Print(os.Stdout, printData)
			fmt.Printf("\n%d rooms, %d levels\n", tree.Len(), depth)
		},
	}
	cmdTree.Flags().Bool("data", false, "show the record held by each node")

	var cmdCheck = &cobra.Command{
		Use:   "check [file]",
		Short: "Verify ordering and balance of the room tree",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tree := mustLoad(resolveDataFile(args, config), config)
			if err := checkTree(os.Stdout, tree); err != nil {
				os.Exit(1)
			}
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse rooms interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a terminal UI to filter rooms and inspect their details`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tree := mustLoad(resolveDataFile(args, config), config)
			detailCache := NewDetailCache(config.Browse.DetailCacheMinutes)
			if err := runBubbleTeaApp(tree, detailCache); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Roomtree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the roomtree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Roomtree configuration",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Roomtree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "roomtree [file]",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MaximumNArgs(1),
		// Default to run command when no subcommand is provided
		Run: runProgram,
	}
	rootCmd.Flags().BoolP("quiet", "q", false, "do not report each insertion")

	rootCmd.AddCommand(cmdRun, cmdSearch, cmdTree, cmdCheck, cmdBrowse, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveDataFile prefers the file named on the command line
func resolveDataFile(args []string, config *Config) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.Data.File
}

func mustLoad(path string, config *Config) *avltree.Tree {
	tree, _, err := loadRoomTree(path, config, false, io.Discard)
	if err != nil {
		log.Fatalf("Error reading room data: %v", err)
	}
	return tree
}

func checkTree(out io.Writer, tree *avltree.Tree) error {
	if err := tree.Check(); err != nil {
		fmt.Fprintf(out, "❌ %sTree is inconsistent:%s %v\n", Error, Reset, err)
		return err
	}
	counts.Fprintf(out, "✅ %d rooms, height %d, ordered and balanced\n", tree.Len(), tree.Height())
	return nil
}
