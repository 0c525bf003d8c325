package main

import (
	"log"

	"payslipcalc/internal/app/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("payslip server failed: %v", err)
	}
}
