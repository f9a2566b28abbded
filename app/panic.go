package app

import (
	"fmt"
	"strings"

	"astraea/astraeaos/kernel"
	"astraea/hal"
)

const panicColor hal.Color = 0xFF3333

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := []string{fmt.Sprintf("panic: %v", info.Value)}
		if len(info.Stack) > 0 {
			lines = append(lines, "stack:")
			for _, line := range strings.Split(string(info.Stack), "\n") {
				if line == "" {
					continue
				}
				lines = append(lines, line)
			}
		} else {
			lines = append(lines, "stack: unavailable")
		}

		if l := h.Logger(); l != nil {
			l.WriteLineString("Astraea Panic:")
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		con := h.Console()
		if con == nil {
			return
		}
		con.SetColor(panicColor)
		con.WriteString("\nAstraea Panic:\n")
		for _, line := range lines {
			con.WriteString(line + "\n")
		}
	})
}
