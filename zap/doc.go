// Package zap adapts a zap logger to the ensure.FailureReporter interface.
//
// Install the adapter once at startup so every violated check is logged with
// structured fields before it propagates:
//
//	ensure.SetFailureReporter(ensurezap.NewReporter(logger))
package zap
