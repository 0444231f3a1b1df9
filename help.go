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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Roomtree %s**

Load classroom data into a balanced search tree and look rooms up by room number.

Built with Go %s

# 1. Commands
* **run [file]** loads the file, prints the rooms in order, copies the tree and prints the copy
* **search [file] --key 101 --key 102** looks rooms up
* **tree [file]** draws the tree sideways, add **--data** to see every record
* **check [file]** verifies the ordering and balance of the loaded tree
* **browse [file]** opens the interactive room browser
* **settings** shows the configuration in ~/%s

# 2. Data file
The first line is a header. Every other line holds a room:

    101,"Science Hall 101",Lecture/Projector,40

Files ending in .gz are read compressed.

# 3. Room ordering
Room numbers are compared character by character. When two numbers share
a prefix, the one whose digits continue sorts later, so 10 comes before 100.
Leading digits are compared as characters: 21 sorts after 100.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), configFileName)
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
