//go:build !ebiten

package main

import "log"

// Without the ebiten tag there is no window; the terminal host is the only
// display. Build with `-tags ebiten` for the GUI.
func main() {
	cfg, sim, err := setup()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := runTerminal(cfg, sim); err != nil {
		log.Fatal(err)
	}
}
