package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hyperifyio/websearch"
	"github.com/hyperifyio/websearch/providers"
)

func main() {
	q := "What is love?"
	if len(os.Args) > 1 {
		q = os.Args[1]
	}
	prov := providers.NewDuckDuckGo()
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()
	res, err := websearch.Search(ctx, websearch.Options{
		Query:      q,
		MaxResults: 5,
		Provider:   prov,
		Debug:      websearch.DebugOptions{Enabled: true, LogRequests: true, LogResponses: true},
	})
	fmt.Println("err:", err)
	for i, r := range res {
		fmt.Printf("%d. %s — %s\n", i+1, r.Title, r.URL)
	}
}
