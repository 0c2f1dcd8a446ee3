package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/inquiry-service/internal/randomgen"
	"gitlab.com/dirk.krummacker/inquiry-service/pkg/model"
)

const serverPort = 8080

// Submits batches of random inquiries and reads the full record list after every batch. Prints the
// average duration of a POST and the duration of the listing in microseconds.
//
// Usage example on the command line:
// > go run main.go
func main() {
	// Redirects are not followed so that a POST measures only the submission.
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	fmt.Println()
	fmt.Println("  Elements      POST      LIST   Records  Rejected")
	fmt.Println("--------------------------------------------------")
	sizes := []int{100, 500, 1000, 5000}
	for _, loops := range sizes {
		fmt.Printf("%10d", loops)
		var duration int64
		rejected := 0
		for i := 0; i < loops; i++ {
			status, d := sendPostRequest(client, randomgen.PickSubmission())
			duration += d
			if status != http.StatusSeeOther {
				rejected++
			}
		}
		fmt.Printf("%10d", duration/int64(loops*1000))
		records, d := sendListRequest(client)
		fmt.Printf("%10d%10d%10d", d/1000, len(records), rejected)
		fmt.Println()
	}
}

func sendPostRequest(client *http.Client, fields map[string]string) (int, int64) {
	form := url.Values{}
	for name, value := range fields {
		form.Set(name, value)
	}
	requestURL := fmt.Sprintf("http://localhost:%d/", serverPort)
	req, err := http.NewRequest(http.MethodPost, requestURL, strings.NewReader(form.Encode()))
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, _, duration := sendRequest(client, req)
	return res.StatusCode, duration
}

func sendListRequest(client *http.Client) ([]model.Record, int64) {
	requestURL := fmt.Sprintf("http://localhost:%d/records/", serverPort)
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	req.Header.Set("Accept", "application/json")
	_, resBody, duration := sendRequest(client, req)
	var records []model.Record
	if err := json.Unmarshal(resBody, &records); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	return records, duration
}

func sendRequest(client *http.Client, req *http.Request) (*http.Response, []byte, int64) {
	before := time.Now().UnixNano()
	res, err := client.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	after := time.Now().UnixNano()
	return res, resBody, after - before
}
