// Package console maps single key presses to live parameter changes.
package console
