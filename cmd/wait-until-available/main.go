package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Polls the record list until the service answers with 200 or the timeout has passed.
//
// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/records/ -timeout=2m
func main() {
	url := flag.String("url", "http://localhost:8080/records/", "the URL to poll")
	timeout := flag.Duration("timeout", 5*time.Minute, "how long to wait before giving up")
	flag.Parse()

	totalWaitTime := 0
	deadline := time.Now().Add(*timeout)
	for {
		res, err := http.Get(*url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				fmt.Println(res.Status)
				return
			}
			fmt.Println(res.Status)
		} else {
			fmt.Println(err)
		}
		if time.Now().After(deadline) {
			fmt.Println("Service not available, giving up")
			os.Exit(1)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
