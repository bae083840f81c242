// Package plltrainer is a training engine for PLL recognition: the last step
// of solving a Rubik's cube layer by layer.
//
// # Features
//
//   - Cube algorithm parsing with precise, categorized errors
//   - Normalization of rotations and wide moves
//   - Symmetry-aware (preAUF, PLL, postAUF) cases
//   - Tracking of new cases and drilling of the ones the user struggles with
//   - Rolling statistics over the last three attempts of every PLL
//
// # Quick Start
//
//	t, err := plltrainer.New(plltrainer.WithTargetParameters(config.TargetParameters{
//	    RecognitionTimeSeconds: 1.5,
//	    TPS:                    3,
//	}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := t.PickAlgorithm(pll.T, "R U R' U' R' F R2 U' R' U' R U R' F'"); err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := t.Attempt(pll.NewCase(pll.U, pll.T, pll.None), 3200, stats.Correct)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("New case:", report.Classification.IsNewCase)
//
//	for _, c := range t.WorstCases() {
//	    fmt.Println(stats.CaseLine(c))
//	}
//
// # Persistence
//
// The trainer holds its state in memory. Snapshot and Restore move it in
// and out as a JSON friendly value; the storage package keeps snapshots in
// SQLite.
package plltrainer
