// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"context"
	"errors"

	"github.com/apache/thrift/lib/go/thrift"
)

const methodLogin = "login"

//go:generate mockgen -destination=../mock/accumulo_proxy_mock.go -package=mock . AccumuloProxy

// AccumuloProxy is the proxy service interface. The client implements it for
// remote calls and server handlers implement it to serve them.
type AccumuloProxy interface {
	// Login authenticates principal with loginProperties and returns the
	// serialized authentication token for use on subsequent calls.
	//
	// Returns *AccumuloSecurityException when the proxy rejects the
	// credentials.
	Login(ctx context.Context, principal string, loginProperties map[string]string) ([]byte, error)
}

// AccumuloProxyClient calls the proxy over a [thrift.TClient].
type AccumuloProxyClient struct {
	c    thrift.TClient
	meta thrift.ResponseMeta
}

// NewAccumuloProxyClientProtocol builds a client reading from iprot and
// writing to oprot.
func NewAccumuloProxyClientProtocol(iprot thrift.TProtocol, oprot thrift.TProtocol) *AccumuloProxyClient {
	return &AccumuloProxyClient{
		c: thrift.NewTStandardClient(iprot, oprot),
	}
}

// NewAccumuloProxyClient wraps an existing [thrift.TClient].
func NewAccumuloProxyClient(c thrift.TClient) *AccumuloProxyClient {
	return &AccumuloProxyClient{c: c}
}

func (p *AccumuloProxyClient) Client_() thrift.TClient {
	return p.c
}

func (p *AccumuloProxyClient) LastResponseMeta_() thrift.ResponseMeta {
	return p.meta
}

func (p *AccumuloProxyClient) SetLastResponseMeta_(meta thrift.ResponseMeta) {
	p.meta = meta
}

// Login implements [AccumuloProxy].
func (p *AccumuloProxyClient) Login(ctx context.Context, principal string, loginProperties map[string]string) ([]byte, error) {
	args := AccumuloProxyLoginArgs{
		Principal:       principal,
		LoginProperties: loginProperties,
	}
	var result AccumuloProxyLoginResult

	meta, err := p.Client_().Call(ctx, methodLogin, &args, &result)
	p.SetLastResponseMeta_(meta)
	if err != nil {
		return nil, err
	}

	if result.Ouch2 != nil {
		return nil, result.Ouch2
	}
	if result.IsSetSuccess() {
		return result.GetSuccess(), nil
	}

	return nil, thrift.NewTApplicationException(thrift.MISSING_RESULT, "login failed: unknown result")
}

// AccumuloProxyProcessor dispatches incoming calls to an [AccumuloProxy]
// handler.
type AccumuloProxyProcessor struct {
	processorMap map[string]thrift.TProcessorFunction
	handler      AccumuloProxy
}

// NewAccumuloProxyProcessor returns a processor serving handler.
func NewAccumuloProxyProcessor(handler AccumuloProxy) *AccumuloProxyProcessor {
	p := &AccumuloProxyProcessor{
		handler:      handler,
		processorMap: make(map[string]thrift.TProcessorFunction),
	}
	p.processorMap[methodLogin] = &accumuloProxyProcessorLogin{handler: handler}
	return p
}

// AddToProcessorMap is part of [thrift.TProcessor].
func (p *AccumuloProxyProcessor) AddToProcessorMap(key string, processor thrift.TProcessorFunction) {
	p.processorMap[key] = processor
}

func (p *AccumuloProxyProcessor) GetProcessorFunction(key string) (processor thrift.TProcessorFunction, ok bool) {
	processor, ok = p.processorMap[key]
	return processor, ok
}

func (p *AccumuloProxyProcessor) ProcessorMap() map[string]thrift.TProcessorFunction {
	return p.processorMap
}

// Process reads one call from iprot and writes the reply to oprot.
// Unknown methods are answered with an UNKNOWN_METHOD application exception.
func (p *AccumuloProxyProcessor) Process(ctx context.Context, iprot, oprot thrift.TProtocol) (success bool, err thrift.TException) {
	name, _, seqID, readErr := iprot.ReadMessageBegin(ctx)
	if readErr != nil {
		return false, thrift.WrapTException(readErr)
	}

	if processor, ok := p.GetProcessorFunction(name); ok {
		return processor.Process(ctx, seqID, iprot, oprot)
	}

	_ = iprot.Skip(ctx, thrift.STRUCT)
	_ = iprot.ReadMessageEnd(ctx)
	x := thrift.NewTApplicationException(thrift.UNKNOWN_METHOD, "Unknown function "+name)
	writeException(ctx, oprot, name, seqID, x)
	return false, x
}

type accumuloProxyProcessorLogin struct {
	handler AccumuloProxy
}

func (p *accumuloProxyProcessorLogin) Process(ctx context.Context, seqID int32, iprot, oprot thrift.TProtocol) (success bool, err thrift.TException) {
	args := AccumuloProxyLoginArgs{}
	if readErr := args.Read(ctx, iprot); readErr != nil {
		_ = iprot.ReadMessageEnd(ctx)
		x := thrift.NewTApplicationException(thrift.PROTOCOL_ERROR, readErr.Error())
		writeException(ctx, oprot, methodLogin, seqID, x)
		return false, thrift.WrapTException(readErr)
	}
	_ = iprot.ReadMessageEnd(ctx)

	result := AccumuloProxyLoginResult{}
	token, handlerErr := p.handler.Login(ctx, args.Principal, args.LoginProperties)
	if handlerErr != nil {
		var secErr *AccumuloSecurityException
		if !errors.As(handlerErr, &secErr) {
			x := thrift.NewTApplicationException(thrift.INTERNAL_ERROR, "Internal error processing login: "+handlerErr.Error())
			writeException(ctx, oprot, methodLogin, seqID, x)
			return true, thrift.WrapTException(handlerErr)
		}
		result.Ouch2 = secErr
	} else {
		result.Success = token
	}

	if writeErr := oprot.WriteMessageBegin(ctx, methodLogin, thrift.REPLY, seqID); writeErr != nil {
		return false, thrift.WrapTException(writeErr)
	}
	if writeErr := result.Write(ctx, oprot); writeErr != nil {
		return false, thrift.WrapTException(writeErr)
	}
	if writeErr := oprot.WriteMessageEnd(ctx); writeErr != nil {
		return false, thrift.WrapTException(writeErr)
	}
	if writeErr := oprot.Flush(ctx); writeErr != nil {
		return false, thrift.WrapTException(writeErr)
	}

	return true, nil
}

func writeException(ctx context.Context, oprot thrift.TProtocol, name string, seqID int32, x thrift.TApplicationException) {
	_ = oprot.WriteMessageBegin(ctx, name, thrift.EXCEPTION, seqID)
	_ = x.Write(ctx, oprot)
	_ = oprot.WriteMessageEnd(ctx)
	_ = oprot.Flush(ctx)
}

var (
	_ AccumuloProxy     = (*AccumuloProxyClient)(nil)
	_ thrift.TProcessor = (*AccumuloProxyProcessor)(nil)
)
