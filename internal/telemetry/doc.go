// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package telemetry records one event per synthesizer run.
//
// A Capturer wraps the run: it calls the body, then reports an Event with the
// method, the requested number of generations, the duration and the outcome.
// Events flow through a Reporter; ChannelReporter fans them out to Listeners
// on a single goroutine so the run itself never blocks on a sink.
//
// Setting EVALPROGRESS_TELEMETRY_OPT_OUT=YES keeps the capture scope but
// discards every event.
package telemetry
