// Package banks resolves Indian bank names from IFSC codes. The registry is
// a process-wide read-only map keyed by the four-letter bank prefix.
package banks

import (
	"fmt"
	"strings"
)

var prefixNames = map[string]string{
	"SBIN": "State Bank of India",
	"HDFC": "HDFC Bank",
	"ICIC": "ICICI Bank",
	"UTIB": "Axis Bank",
	"PUNB": "Punjab National Bank",
	"KKBK": "Kotak Mahindra Bank",
	"BARB": "Bank of Baroda",
	"CNRB": "Canara Bank",
	"UBIN": "Union Bank of India",
	"IDIB": "Indian Bank",
	"IOBA": "Indian Overseas Bank",
	"YESB": "Yes Bank",
	"INDB": "IndusInd Bank",
	"FDRL": "Federal Bank",
	"MAHB": "Bank of Maharashtra",
	"CBIN": "Central Bank of India",
	"UCBA": "UCO Bank",
	"PSIB": "Punjab & Sind Bank",
	"IDFB": "IDFC First Bank",
	"RATN": "RBL Bank",
	"KARB": "Karnataka Bank",
	"SIBL": "South Indian Bank",
}

// NameForIFSC maps an IFSC code to its issuing bank. Unmapped prefixes fall
// back to "Bank (XXXX)"; an empty IFSC yields "Unknown Bank".
func NameForIFSC(ifsc string) string {
	ifsc = strings.ToUpper(strings.TrimSpace(ifsc))
	if len(ifsc) < 4 {
		return "Unknown Bank"
	}
	prefix := ifsc[:4]
	if name, ok := prefixNames[prefix]; ok {
		return name
	}
	return fmt.Sprintf("Bank (%s)", prefix)
}
