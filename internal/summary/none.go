package summary

import "context"

// None produces no summary; the slide omits its summary block.
type None struct{}

func (None) Mode() Mode { return ModeNone }

func (None) Summarize(context.Context, Input) string { return "" }
