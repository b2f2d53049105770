// Package timeline builds per-spacecraft command sequences from DSM_Cmd
// lines. Each line is one timed event; its trailing tokens are classified
// into sub-commands that reference command records by index.
package timeline
