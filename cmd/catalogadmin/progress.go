package main

import (
	"fmt"
	"io"

	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/cwriter"
	"github.com/vbauerster/mpb/decor"
)

// importBar renders one step per imported record. It implements importcatalog.Progress.
type importBar struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

func newImportBar(out io.Writer, path string, total int) *importBar {
	p := mpb.New(
		mpb.Output(cwriter.New(out)),
	)

	name := fmt.Sprintf("importing %s", path)

	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(decor.StaticName(name, len(name), 0)),
		mpb.AppendDecorators(decor.Percentage(5, 0)),
	)

	return &importBar{progress: p, bar: bar}
}

// Step implements importcatalog.Progress.
func (b *importBar) Step(string, bool) {
	b.bar.Incr(1)
}

// Stop flushes the bar.
func (b *importBar) Stop() {
	b.progress.Stop()
}
