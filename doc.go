// Package robomaze evolves move sequences that steer a robot through a 2-D maze.
//
// A generational genetic algorithm (tournament selection, single-point crossover,
// per-gene mutation and elitism) breeds chromosomes of up/left/right/down moves.
// Each chromosome is scored by replaying it against the maze: the robot earns one
// point per move it survives and a large bonus when it reaches the goal.
//
// The algorithm lives in the mazega package; mazega/history records per-generation
// statistics and mazega/render draws the solved maze on a terminal.
//
// Basic usage:
//
//	// Load configuration
//	config, err := mazega.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	maze, err := mazega.NewMaze(grid)
//	if err != nil {
//		log.Fatalf("Error building maze: %v", err)
//	}
//
//	rng, _ := config.Run.NewRand()
//	ga, err := mazega.NewGeneticAlgorithm(config.Params(), rng)
//	if err != nil {
//		log.Fatalf("Error creating genetic algorithm: %v", err)
//	}
//
//	// Drive the generations yourself...
//	population, _ := ga.InitPopulation(config.GA.ChromosomeLength)
//	ga.EvalPopulation(population, maze)
//	for generation := 1; !ga.IsTerminationConditionMet(generation, config.GA.MaxGenerations); generation++ {
//		population, _ = ga.CrossoverPopulation(population)
//		population, _ = ga.MutatePopulation(population)
//		ga.EvalPopulation(population, maze)
//	}
//
//	// ...or let Run do it.
//	result, err := ga.Run(ctx, maze, mazega.RunOptions{
//		ChromosomeLength: config.GA.ChromosomeLength,
//		MaxGenerations:   config.GA.MaxGenerations,
//		StopOnSolution:   true,
//	})
package robomaze
