// This is a light wasm wrapper exposing the parser to a browser/JS host.
// You don't need to include this in your website.
package main

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/parser"
	"github.com/cowwoc/styler-sub000/source"
)

// parse is exposed to JS as `_JAVAPARSE(version, text, callback)`. callback
// is invoked Node-style with (error, diagnosticsJoinedByNewline); a
// successful parse with no diagnostics calls back with an empty string.
func parse(this js.Value, args []js.Value) interface{} {
	versionSpelling := args[0].String()
	text := args[1].String()
	callback := args[2]

	var version javaversion.Version
	switch versionSpelling {
	case "21":
		version = javaversion.Java21
	case "25-preview":
		version = javaversion.Java25Preview
	default:
		version = javaversion.Java25
	}

	src, err := source.New(text)
	if err != nil {
		callback.Invoke(err.Error(), js.Null())
		return true
	}

	result := parser.Parse(src, version)
	lines := make([]string, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		lines[i] = strconv.Itoa(d.Offset) + ": " + d.Message
	}
	callback.Invoke(js.Null(), strings.Join(lines, "\n"))
	return true
}

func main() {
	c := make(chan bool)
	// I wish this wasn't global!
	js.Global().Set("_JAVAPARSE", js.FuncOf(parse))
	<-c
}
