/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package main

import (
	"encoding/json"
	"log"
)

type functionError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// SimplifyFunctionError simplifies errors that come in the form of {"errorMessage":"access denied","errorType":"errorString"}, to simply be "access denied"
func SimplifyFunctionError(payload []byte, fallback string) string {
	errorParsed := &functionError{}
	err := json.Unmarshal(payload, errorParsed)
	if err != nil || errorParsed.ErrorMessage == "" {
		log.Default().Printf("function error payload was not valid json, falling back to the function error code: %s", fallback)
		return fallback
	}

	log.Default().Printf("simplifying function error with type of %s and message: %s", errorParsed.ErrorType, errorParsed.ErrorMessage)

	return errorParsed.ErrorMessage
}
