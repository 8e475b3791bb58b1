// Command leadform submits an access request to a running zuzz server from
// the terminal. Useful for smoke-testing the intake endpoint without a
// browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"zuzz/internal/intake"
)

func main() {
	var (
		server     = flag.String("server", "http://localhost:8080", "base URL of the zuzz server")
		name       = flag.String("name", "", "contact name (required)")
		email      = flag.String("email", "", "contact email (required)")
		phone      = flag.String("phone", "", "contact phone")
		industry   = flag.String("industry", "", "industry / specialty")
		timeoutSec = flag.Int("timeout", 10, "request timeout in seconds")
	)
	flag.Parse()

	if *name == "" || *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctrl := intake.New(*server+"/api/access-request",
		intake.WithTracker(func(event string) {
			log.Printf("tracked conversion event %q", event)
		}),
	)
	ctrl.SetField("name", *name)
	ctrl.SetField("email", *email)
	ctrl.SetField("phone", *phone)
	ctrl.SetField("industry", *industry)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSec)*time.Second)
	defer cancel()

	if err := ctrl.Submit(ctx); err != nil {
		log.Fatalf("submission failed: %v", err)
	}
	if ctrl.Status() != intake.StatusSuccess {
		log.Fatalf("submission did not succeed: status=%s err=%v", ctrl.Status(), ctrl.Err())
	}
	fmt.Println("Access request submitted.")
}
