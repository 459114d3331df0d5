// Package kenpom fetches the public college basketball ratings table from
// kenpom.com and converts it into typed Team records keyed by team name.
//
// The package performs a single synchronous fetch-parse-return cycle per
// call. There is no caching, no retry, and no persistence; callers that
// want those layer them above this package.
//
// Usage:
//
//	teams, err := kenpom.Get()
//	if err != nil {
//		// handle *kenpom.FetchError / *kenpom.ParseError
//	}
//	uk := teams["Kentucky"]
//	fmt.Println(uk.Rank, uk.Record(), uk.E())
//
// For the meaning of individual statistics, refer to kenpom.com.
package kenpom
