/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package cfnresponse

import (
	"context"
	"github.com/aws/aws-lambda-go/cfn"
	"log"
)

type Responder interface {
	Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, reason string, data map[string]interface{}) error
}

// CallbackResponder delivers the lifecycle outcome to the pre-signed callback
// URL that CloudFormation attached to the event. StackId, RequestId and
// LogicalResourceId are echoed from the event unchanged; this component only
// decides Status, Reason and Data.
type CallbackResponder struct{}

func NewCallbackResponder() CallbackResponder {
	return CallbackResponder{}
}

func (responder CallbackResponder) Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, reason string, data map[string]interface{}) error {
	response := cfn.NewResponse(&event)
	response.Status = status
	response.Reason = reason
	response.Data = data

	// CloudFormation requires a physical resource id even though this resource
	// provisions nothing itself. Echo the incoming id, defaulting to the
	// logical id so that updates never register as a replacement.
	response.PhysicalResourceID = event.PhysicalResourceID
	if response.PhysicalResourceID == "" {
		response.PhysicalResourceID = event.LogicalResourceID
	}

	log.Default().Printf("sending %s response for request %s to the stack callback url", status, event.RequestID)

	return response.Send()
}
