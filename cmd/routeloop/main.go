// Command routeloop computes a target-length circuit over a road-network
// graph read from a DIMACS-like text file or an edge-list JSON file.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
