/* Package main: gobf -- a fixed tape brainfuck machine

The machine has a tape of byte cells (30000 by default), a data pointer
addressing one cell of it, and a program of eight instructions:

	>   move the data pointer right, wrapping past the last cell to the first
	<   move the data pointer left, wrapping past the first cell to the last
	+   increment the current cell, wrapping 255 to 0
	-   decrement the current cell, wrapping 0 to 255
	.   output the current cell
	,   input into the current cell; not implemented, this always halts the
	    machine with an error
	[   if the current cell is zero, jump past the matching ]
	]   if the current cell is non-zero, jump back into the loop after the
	    matching [

Every other character in source text is a comment, unless strict lexing is
enabled, under which anything but whitespace is an error.

Programs are checked for balanced brackets before any instruction runs; the
pairing is then kept in a jump table, so that loops never rescan the program.
A jump lands ON the matching bracket, and the following instruction pointer
increment then moves past it (leaving a loop) or into the body (repeating a
loop).

Usage:

	gobf [flags] program.bf

See main.go for flags, and config.go for the YAML config file format.
*/
package main
