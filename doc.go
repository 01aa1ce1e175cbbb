// Package ansibanner renders text as styled, optionally animated banners
// for ANSI terminals.
//
// Text is laid out with a FIGlet font onto a Grid of cells, colored with a
// gradient, re-charactered by a fill, decorated with effects and finally
// serialised with escape sequences for the terminal's color capability.
// A Config describes a style declaratively; Config.Resolve turns it into a
// Pipeline of validated stages, and a Renderer runs that pipeline:
//
//	r, err := ansibanner.NewRenderer(ansibanner.WithConfig(ansibanner.Config{Preset: "neon-cyber"}))
//	if err != nil {
//		return err
//	}
//	out, err := r.Render("Hello", ansibanner.HintsFromLookup(os.LookupEnv))
//
// Animations (sweep, wave, roll) produce independent frames from a base
// grid; Renderer.FrameGrids computes them concurrently.
package ansibanner
