// Package eutils provides a client for the NCBI E-utilities API.
//
// The client covers the two endpoints this tool needs: esearch.fcgi to run
// a keyword search against the pubmed database, and efetch.fcgi to pull
// article records out of the result set the history server cached for that
// search.
//
// A search with history enabled returns a SearchSession: the total match
// count plus the WebEnv/QueryKey token pair that later fetch requests use
// to address slices of the cached result set. The session is immutable and
// expires server-side after inactivity; the client never deletes it.
//
// Usage:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := eutils.NewClient("your-api-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	session, err := client.Search(ctx, "cancer AND therapy", "2022/01/01", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	articles, err := client.FetchBatch(ctx, session, 0, 500)
//
// Failed requests are not retried. Network and HTTP-level failures surface
// as *TransportError, responses missing expected fields as *ParseError.
package eutils
