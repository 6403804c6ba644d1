package rpc

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
)

var (
	// tooManyResultsPattern matches the result caps reported by common providers.
	tooManyResultsPattern = regexp.MustCompile(
		`(?i)(query returned more than \d+ results|log response size exceeded|exceeds? max(imum)? results)`)

	suggestedRangePattern = regexp.MustCompile(`\[(0x[0-9a-fA-F]+),\s*(0x[0-9a-fA-F]+)\]`)
)

// IsTooManyResultsError reports whether err is a provider result cap for eth_getLogs.
// The returned string is the error payload that may carry a suggested block range.
func IsTooManyResultsError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		errData := fmt.Sprintf("%v", dataErr.ErrorData())
		return tooManyResultsPattern.MatchString(errData), errData
	}

	msg := err.Error()
	if tooManyResultsPattern.MatchString(msg) {
		return true, msg
	}

	return false, ""
}

// ParseSuggestedBlockRange extracts the block range a provider suggests after a result cap.
// Expected format: "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."
func ParseSuggestedBlockRange(err string) (fromBlock, toBlock uint64, ok bool) {
	matches := suggestedRangePattern.FindStringSubmatch(err)
	if len(matches) != 3 { //nolint:mnd
		return 0, 0, false
	}

	from, err1 := common.ParseUint64orHex(&matches[1])
	to, err2 := common.ParseUint64orHex(&matches[2])
	if err1 != nil || err2 != nil || from > to {
		return 0, 0, false
	}

	return from, to, true
}
