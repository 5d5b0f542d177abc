// Command cricstats queries a records store from the terminal: records of
// any category, match scorecards and reference lookups. It also migrates
// and seeds stores.
package main

func main() {
	Execute()
}
