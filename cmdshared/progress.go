package cmdshared

import (
	"fmt"
	"io"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
)

// LineReporter prints the progress of an install as plain lines
type LineReporter struct {
	out io.Writer
}

func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

func (r *LineReporter) PackStarted(name string) {
	_, _ = fmt.Fprintln(r.out, name)
}

func (r *LineReporter) DownloadStarted(total int) {
	_, _ = fmt.Fprintf(r.out, "Downloading %d files...\n", total)
}

func (r *LineReporter) FileDownloaded(n int, total int, name string) {
	_, _ = fmt.Fprintf(r.out, "(%d/%d) %s\n", n, total, name)
}

func (r *LineReporter) DownloadFinished() {}

func (r *LineReporter) OverrideExtracted(path string) {
	_, _ = fmt.Fprintln(r.out, path)
}

func (r *LineReporter) Finished() {
	_, _ = fmt.Fprintln(r.out, "Finish!")
}

// BarReporter shows file downloads as a progress bar instead of one line per file
type BarReporter struct {
	LineReporter
	progress *mpb.Progress
	bar      *mpb.Bar
	total    int
	done     int
}

func NewBarReporter(out io.Writer) *BarReporter {
	return &BarReporter{LineReporter: LineReporter{out: out}}
}

func (r *BarReporter) DownloadStarted(total int) {
	r.LineReporter.DownloadStarted(total)
	if total == 0 {
		return
	}
	r.total = total
	r.done = 0
	r.progress = mpb.New(mpb.WithOutput(r.out), mpb.WithWidth(48))
	r.bar = r.progress.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Downloading ", decor.WC{W: 12}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
}

func (r *BarReporter) FileDownloaded(n int, total int, name string) {
	if r.bar != nil {
		r.done++
		r.bar.Increment()
	}
}

func (r *BarReporter) DownloadFinished() {
	if r.progress == nil {
		return
	}
	if r.done < r.total {
		// Batch failed; complete the bar where it is so Wait returns
		r.bar.SetTotal(int64(r.done), true)
	}
	r.progress.Wait()
	r.progress = nil
	r.bar = nil
}
