package svgpath

// Minify returns the shortest path data equivalent to the longest valid
// prefix of s. The result is empty when s does not start with a moveto.
func Minify(s string) string {
	return ParsePathData(s).String()
}

// Result describes one minification.
type Result struct {
	Input    string
	Output   string
	Commands int // commands parsed from Input
}

// MinifyResult minifies s like Minify and reports what was parsed.
func MinifyResult(s string) Result {
	pd := ParsePathData(s)
	return Result{
		Input:    s,
		Output:   pd.String(),
		Commands: len(pd),
	}
}

// Empty reports whether nothing valid was found.
func (r Result) Empty() bool {
	return r.Commands == 0
}

// Changed reports whether Output differs from Input.
func (r Result) Changed() bool {
	return r.Output != r.Input
}

// Saved returns the number of bytes saved. It is negative when formatting
// expands a number, as in "M1e5 0".
func (r Result) Saved() int {
	return len(r.Input) - len(r.Output)
}
