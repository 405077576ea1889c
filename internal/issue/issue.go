// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RootNotFoundId Id = iota + 1
	NoDescriptorFoundId
	ConfigLoadFailedId
	InventoryWriteFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	rootNotFoundIssue = &Issue{
		id: RootNotFoundId,
		mdMsg: `
# Root directory not found!

The path given via --root does not exist or is not a directory.

## Things you can try:
- Check the path for typos:
~~~
$ pbinv --root /path/to/projects
~~~

- Run from inside the directory that holds your project folders:
~~~
$ cd /path/to/projects/..
$ pbinv --root projects
~~~

pbinv expects --root to contain one folder per PBIP export, e.g.:
~~~
projects/
  Sales/
    Sales.pbip
    Sales.Report/
    Sales.SemanticModel/
~~~`,
	}

	noDescriptorFoundIssue = &Issue{
		id: NoDescriptorFoundId,
		mdMsg: `
# No .pbip descriptor found in any project!

Every project folder was scanned but none contained a .pbip file.

## Search order per project folder:
1. .pbip files directly inside the project folder
2. Nested .pbip files with sibling <name>.Report and <name>.SemanticModel folders
3. Any nested .pbip file

## Things you can try:
- Verify the export was produced in PBIP format (not .pbix)
- Check that --root points at the directory *containing* the project folders,
  not at a single project folder`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the pbinv configuration file.

## Configuration file locations:
- Linux: ~/.config/pbinv/config.cue
- macOS: ~/Library/Application Support/pbinv/config.cue
- Windows: %APPDATA%\pbinv\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ pbinv config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
inventory_dir_name: "inventory"
manifest_name: "manifest.csv"

ui: {
  color_scheme: "auto"
  verbose: true
}
~~~`,
	}

	inventoryWriteFailedIssue = &Issue{
		id: InventoryWriteFailedId,
		mdMsg: `
# Failed to write to the inventory directory!

The inventory tree could not be created or written.

## Common causes:
- The parent of --root is not writable (the inventory lives one level up)
- Disk full or quota exceeded
- An existing file is blocking a directory path

## Things you can try:
- Check permissions on the directory one level above --root
- Use --dry-run to review the planned writes without touching disk`,
	}

	issues = map[Id]*Issue{
		rootNotFoundIssue.Id():         rootNotFoundIssue,
		noDescriptorFoundIssue.Id():    noDescriptorFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		inventoryWriteFailedIssue.Id(): inventoryWriteFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id() - b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
