package rules

/*
NextState returns whether a cell is alive in the next generation, given its
current state and the number of live neighbours it had in this generation.

A live cell survives with 2 or 3 live neighbours; a dead cell is born with
exactly 3. Everything else is dead.
*/
func NextState(alive bool, neighbours int) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
