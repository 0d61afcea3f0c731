// Package async runs functions in goroutines and hands back typed futures.
//
// The preview session starts each debounced render with Async and installs
// the result through OnComplete; ordering between renders is decided by the
// caller's generation counter, not by completion order:
//
//	async.Async(ctx, req, renderer.Preview).OnComplete(func(res *render.Result, err error) {
//	    s.apply(gen, res, err)
//	})
package async
