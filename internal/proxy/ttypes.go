// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// AccumuloSecurityException is raised by the proxy when a call is rejected
// for security reasons, most notably bad credentials on login.
//
// Attributes:
//   - Msg
type AccumuloSecurityException struct {
	Msg string `thrift:"msg,1" db:"msg" json:"msg"`
}

// NewAccumuloSecurityException returns an empty exception.
func NewAccumuloSecurityException() *AccumuloSecurityException {
	return &AccumuloSecurityException{}
}

func (p *AccumuloSecurityException) GetMsg() string {
	return p.Msg
}

func (p *AccumuloSecurityException) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read error: ", p), err)
	}

	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%T field %d read error: ", p, fieldID), err)
		}
		if fieldTypeID == thrift.STOP {
			break
		}

		switch {
		case fieldID == 1 && fieldTypeID == thrift.STRING:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return thrift.PrependError("error reading field 1: ", err)
			}
			p.Msg = v
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}

		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := iprot.ReadStructEnd(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T read struct end error: ", p), err)
	}
	return nil
}

func (p *AccumuloSecurityException) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "AccumuloSecurityException"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}

	if err := oprot.WriteFieldBegin(ctx, "msg", thrift.STRING, 1); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:msg: ", p), err)
	}
	if err := oprot.WriteString(ctx, p.Msg); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.msg (1) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 1:msg: ", p), err)
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(ctx); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *AccumuloSecurityException) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("AccumuloSecurityException(%+v)", *p)
}

func (p *AccumuloSecurityException) Error() string {
	return p.String()
}

// TExceptionType implements [thrift.TException].
func (p *AccumuloSecurityException) TExceptionType() thrift.TExceptionType {
	return thrift.TExceptionTypeCompiled
}

var _ thrift.TException = (*AccumuloSecurityException)(nil)
