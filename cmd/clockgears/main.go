// Command clockgears generates STL models of clock gear wheels and complete
// four-wheel gear trains from BS 978 proportions.
package main

func main() {
	Execute()
}
