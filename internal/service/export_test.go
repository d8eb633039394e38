package service

// NewTokenBucketWithClock exposes the clock-driven constructor to tests.
var NewTokenBucketWithClock = newTokenBucket
