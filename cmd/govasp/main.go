// Command govasp plots band structures and total densities of states from
// VASP calculations post-processed with vaspkit.
package main

func main() {
	Execute()
}
