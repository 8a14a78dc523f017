/*
Package fluentemoji is a build-time asset pipeline which converts the Fluent Emoji
source tree into web-optimized assets: padding-trimmed and untrimmed WebP renditions
of every 3D raster variant, the flat SVG variant, and a JSON lookup map keyed by
Unicode codepoint.

The package provides a command line interface which drives the whole build.
To check the supported commands type:

	$ fluentemoji --help

The conversion work is partitioned into fixed-size batches, each executed as a
separate worker process for crash isolation. A failing icon is logged and skipped;
a failing batch degrades the final map but never aborts the build.

By default the Builder re-invokes its own executable in worker mode, a protocol
only the fluentemoji command implements. A binary embedding the Builder should
set Worker to run the batches in-process instead:

	package main

	import (
		"fmt"

		"fluentemoji"
	)

	func main() {
		cfg := fluentemoji.DefaultConfig()
		b := &fluentemoji.Builder{
			Config: cfg,
			Worker: func(batch int, span fluentemoji.Span) error {
				return fluentemoji.RunBatch(cfg, batch, span.Start, span.End)
			},
		}

		count, err := b.Run()
		if err != nil {
			fmt.Printf("Error building the emoji assets: %s", err.Error())
		}
		fmt.Printf("Produced %d entries", count)
	}
*/
package fluentemoji
