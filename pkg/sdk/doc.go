// Package vendex provides a Go client for the vendex wedding vendor
// discovery API.
//
//	client := vendex.New("http://localhost:8080", vendex.WithAPIKey("secret"))
//	resp, _ := client.SearchVenues(ctx, vendex.SearchRequest{
//	    City:        "Mumbai",
//	    VenueType:   "heritage",
//	    GuestCount:  500,
//	    WeddingType: "traditional hindu",
//	})
//	for _, v := range resp.Venues {
//	    fmt.Println(v.Name, v.RelevanceScore)
//	}
package vendex
