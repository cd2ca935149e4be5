package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/appengine-ltd/homespring/internal/river"
)

// Dump renders every node of r as one table row, indented by depth.
func Dump(w io.Writer, r *river.River) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Node", "Type", "State", "Blocks", "Up", "Down", "Delay"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	r.Walk(func(n *river.Node, depth int) bool {
		table.Append([]string{
			strconv.Itoa(int(n.ID)),
			strings.Repeat("  ", depth) + n.Name,
			n.Instruction(),
			stateFlags(n),
			blockFlags(n),
			strconv.Itoa(n.CountSalmon(river.Upstream)),
			strconv.Itoa(n.CountSalmon(river.Downstream)),
			delay(n),
		})
		return true
	})
	table.Render()
}

func stateFlags(n *river.Node) string {
	return flags(
		flag{"snowy", n.Snowy},
		flag{"watered", n.Watered},
		flag{"powered", n.Powered},
		flag{"destroyed", n.Destroyed},
	)
}

func blockFlags(n *river.Node) string {
	return flags(
		flag{"snow", n.BlockSnow},
		flag{"water", n.BlockWater},
		flag{"power", n.BlockPower},
		flag{"salmon", n.BlockSalmon},
		flag{"very-salmon", n.VeryBlockSalmon},
	)
}

type flag struct {
	name string
	set  bool
}

func flags(fs ...flag) string {
	var set []string
	for _, f := range fs {
		if f.set {
			set = append(set, f.name)
		}
	}
	if len(set) == 0 {
		return "-"
	}
	return strings.Join(set, ",")
}

func delay(n *river.Node) string {
	if n.Type != river.Shallows && n.Type != river.Rapids {
		return "-"
	}
	return fmt.Sprint(n.Delay)
}
