// Command grove materializes the bundled sample scenes and prints the
// resulting live object trees.
package main

func main() {
	Execute()
}
