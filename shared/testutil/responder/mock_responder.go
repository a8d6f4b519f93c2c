/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package responder

import (
	"context"
	"errors"
	"github.com/aws/aws-lambda-go/cfn"
)

type CapturedResponse struct {
	Event  cfn.Event
	Status cfn.StatusType
	Reason string
	Data   map[string]interface{}
}

type MockResponder struct {
	Responses []CapturedResponse
}

type MockResponderWithErrorResponse struct{}

func (responder *MockResponder) Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, reason string, data map[string]interface{}) error {
	responder.Responses = append(responder.Responses, CapturedResponse{
		Event:  event,
		Status: status,
		Reason: reason,
		Data:   data,
	})

	return nil
}

func (responder *MockResponderWithErrorResponse) Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, reason string, data map[string]interface{}) error {
	return errors.New("failed to put response to the stack callback url")
}
