// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package classify defines the dialog-act label set and the
// classifiers that map a raw utterance onto it.
//
// The dialog controller treats classification as a black box: any
// implementation of ActClassifier can drive it. Labels are validated
// at this boundary; a label outside the closed set is passed through
// unchanged and the controller treats it as a no-op rather than an
// error.
package classify

import "context"

// Act is the classified communicative intent of one user utterance.
type Act string

// The closed dialog-act label set.
const (
	ActAck      Act = "ack"
	ActAffirm   Act = "affirm"
	ActBye      Act = "bye"
	ActConfirm  Act = "confirm"
	ActDeny     Act = "deny"
	ActHello    Act = "hello"
	ActInform   Act = "inform"
	ActNegate   Act = "negate"
	ActNull     Act = "null"
	ActRepeat   Act = "repeat"
	ActReqAlts  Act = "reqalts"
	ActReqMore  Act = "reqmore"
	ActRequest  Act = "request"
	ActRestart  Act = "restart"
	ActThankYou Act = "thankyou"
)

// knownActs is the closed label set plus the colloquialism aliases
// some classifiers emit directly.
var knownActs = map[Act]Act{
	ActAck: ActAck, ActAffirm: ActAffirm, ActBye: ActBye,
	ActConfirm: ActConfirm, ActDeny: ActDeny, ActHello: ActHello,
	ActInform: ActInform, ActNegate: ActNegate, ActNull: ActNull,
	ActRepeat: ActRepeat, ActReqAlts: ActReqAlts, ActReqMore: ActReqMore,
	ActRequest: ActRequest, ActRestart: ActRestart, ActThankYou: ActThankYou,

	// Classifier-specific extras mapped onto the canonical set.
	"hi": ActHello,
	"ye": ActAffirm,
}

// Known reports whether a label belongs to the closed act set.
func Known(act Act) bool {
	_, ok := knownActs[act]
	return ok
}

// Normalize maps classifier output onto the canonical label set.
// Unknown labels pass through unchanged; the controller treats them
// as no-ops.
func Normalize(act Act) Act {
	if canonical, ok := knownActs[act]; ok {
		return canonical
	}
	return act
}

// ActClassifier maps an utterance to a dialog act.
//
// # Description
//
// Classification is a synchronous blocking call made once per turn;
// the controller has no retry or timeout policy of its own, so an
// implementation that talks to a remote model should bound its own
// latency via the context.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use; the HTTP server
// classifies turns from many sessions through one instance.
type ActClassifier interface {
	Classify(ctx context.Context, utterance string) (Act, error)
}
