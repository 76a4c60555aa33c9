// Package controller drives one generator through a single run.
//
// A run is strictly sequential: a health probe, a fixed batch of GetRandom
// round-trips, a fire-and-forget Shutdown, then all-or-nothing parsing of
// the collected lines. Every command's response is read before the next
// command is written, so responses can never be misattributed.
//
//	ctrl, err := controller.New(ctx, &config.Options{Logger: log})
//	if err != nil {
//	    return err
//	}
//	defer ctrl.Close()
//
//	values, err := ctrl.Run(ctx)
package controller
