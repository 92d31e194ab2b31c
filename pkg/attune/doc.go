// Package attune enriches free-form reflection text into a structured affect
// reading: a validated emotion triple from a 6×6×6 wheel, dual valence,
// context labels, and a calibrated confidence score.
//
// Quick start:
//
//	a, err := attune.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	reading, _ := a.Enrich("Got promoted today but I feel so empty inside")
//	fmt.Println(reading.Primary, reading.Secondary) // sad depressed
//
// The enrichment core is deterministic: the same input always yields the same
// reading. An Attune instance is safe for concurrent use. Create once, reuse
// across requests.
package attune
