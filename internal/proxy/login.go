// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package proxy

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// AccumuloProxyLoginArgs holds the arguments of the login call.
//
// Attributes:
//   - Principal
//   - LoginProperties
type AccumuloProxyLoginArgs struct {
	Principal       string            `thrift:"principal,1" db:"principal" json:"principal"`
	LoginProperties map[string]string `thrift:"loginProperties,2" db:"loginProperties" json:"loginProperties"`
}

func NewAccumuloProxyLoginArgs() *AccumuloProxyLoginArgs {
	return &AccumuloProxyLoginArgs{}
}

func (p *AccumuloProxyLoginArgs) GetPrincipal() string {
	return p.Principal
}

func (p *AccumuloProxyLoginArgs) GetLoginProperties() map[string]string {
	return p.LoginProperties
}

func (p *AccumuloProxyLoginArgs) Read(ctx context.Context, iprot thrift.TProtocol) error {
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
			p.Principal = v
		case fieldID == 2 && fieldTypeID == thrift.MAP:
			if err := p.readLoginProperties(ctx, iprot); err != nil {
				return err
			}
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

func (p *AccumuloProxyLoginArgs) readLoginProperties(ctx context.Context, iprot thrift.TProtocol) error {
	_, _, size, err := iprot.ReadMapBegin(ctx)
	if err != nil {
		return thrift.PrependError("error reading map begin: ", err)
	}

	props := make(map[string]string, size)
	for i := 0; i < size; i++ {
		key, err := iprot.ReadString(ctx)
		if err != nil {
			return thrift.PrependError("error reading field 0: ", err)
		}
		value, err := iprot.ReadString(ctx)
		if err != nil {
			return thrift.PrependError("error reading field 0: ", err)
		}
		props[key] = value
	}
	p.LoginProperties = props

	if err := iprot.ReadMapEnd(ctx); err != nil {
		return thrift.PrependError("error reading map end: ", err)
	}
	return nil
}

func (p *AccumuloProxyLoginArgs) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "login_args"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}

	if err := oprot.WriteFieldBegin(ctx, "principal", thrift.STRING, 1); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:principal: ", p), err)
	}
	if err := oprot.WriteString(ctx, p.Principal); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T.principal (1) field write error: ", p), err)
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 1:principal: ", p), err)
	}

	if err := oprot.WriteFieldBegin(ctx, "loginProperties", thrift.MAP, 2); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field begin error 2:loginProperties: ", p), err)
	}
	if err := oprot.WriteMapBegin(ctx, thrift.STRING, thrift.STRING, len(p.LoginProperties)); err != nil {
		return thrift.PrependError("error writing map begin: ", err)
	}
	for k, v := range p.LoginProperties {
		if err := oprot.WriteString(ctx, k); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T. (0) field write error: ", p), err)
		}
		if err := oprot.WriteString(ctx, v); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T. (0) field write error: ", p), err)
		}
	}
	if err := oprot.WriteMapEnd(ctx); err != nil {
		return thrift.PrependError("error writing map end: ", err)
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write field end error 2:loginProperties: ", p), err)
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(ctx); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *AccumuloProxyLoginArgs) String() string {
	if p == nil {
		return "<nil>"
	}
	// loginProperties carries the password and is never printed.
	return fmt.Sprintf("AccumuloProxyLoginArgs(Principal:%s LoginProperties:<%d entries>)", p.Principal, len(p.LoginProperties))
}

// AccumuloProxyLoginResult holds either the token returned by login or the
// security exception it raised.
//
// Attributes:
//   - Success
//   - Ouch2
type AccumuloProxyLoginResult struct {
	Success []byte                     `thrift:"success,0" db:"success" json:"success,omitempty"`
	Ouch2   *AccumuloSecurityException `thrift:"ouch2,1" db:"ouch2" json:"ouch2,omitempty"`
}

func NewAccumuloProxyLoginResult() *AccumuloProxyLoginResult {
	return &AccumuloProxyLoginResult{}
}

func (p *AccumuloProxyLoginResult) GetSuccess() []byte {
	return p.Success
}

func (p *AccumuloProxyLoginResult) GetOuch2() *AccumuloSecurityException {
	return p.Ouch2
}

func (p *AccumuloProxyLoginResult) IsSetSuccess() bool {
	return p.Success != nil
}

func (p *AccumuloProxyLoginResult) IsSetOuch2() bool {
	return p.Ouch2 != nil
}

func (p *AccumuloProxyLoginResult) Read(ctx context.Context, iprot thrift.TProtocol) error {
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
		case fieldID == 0 && fieldTypeID == thrift.STRING:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return thrift.PrependError("error reading field 0: ", err)
			}
			p.Success = v
		case fieldID == 1 && fieldTypeID == thrift.STRUCT:
			p.Ouch2 = NewAccumuloSecurityException()
			if err := p.Ouch2.Read(ctx, iprot); err != nil {
				return thrift.PrependError(fmt.Sprintf("%T error reading struct: ", p.Ouch2), err)
			}
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

func (p *AccumuloProxyLoginResult) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "login_result"); err != nil {
		return thrift.PrependError(fmt.Sprintf("%T write struct begin error: ", p), err)
	}

	if p.IsSetSuccess() {
		if err := oprot.WriteFieldBegin(ctx, "success", thrift.STRING, 0); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 0:success: ", p), err)
		}
		if err := oprot.WriteBinary(ctx, p.Success); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T.success (0) field write error: ", p), err)
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 0:success: ", p), err)
		}
	}

	if p.IsSetOuch2() {
		if err := oprot.WriteFieldBegin(ctx, "ouch2", thrift.STRUCT, 1); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field begin error 1:ouch2: ", p), err)
		}
		if err := p.Ouch2.Write(ctx, oprot); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T error writing struct: ", p.Ouch2), err)
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return thrift.PrependError(fmt.Sprintf("%T write field end error 1:ouch2: ", p), err)
		}
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := oprot.WriteStructEnd(ctx); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

func (p *AccumuloProxyLoginResult) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("AccumuloProxyLoginResult(Success:<%d bytes> Ouch2:%s)", len(p.Success), p.Ouch2)
}
