package policymerger

import (
	"bytes"
	"encoding/json"
	"github.com/omics-cicd/release-automation/shared/errors"
	"strings"
)

const (
	// ECRPolicyVersion is the policy language version ECR repository policies are written with.
	ECRPolicyVersion = "2008-10-17"
	// CurrentPolicyVersion adds policy variables such as ${aws:PrincipalAccount} to conditions.
	CurrentPolicyVersion = "2012-10-17"
)

var ErrInvalidStatementShape = errors.NewSentinelError("invalid policy statement shape")

type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

// PolicyDocument is an ECR repository policy as stored in the repository's policyText.
type PolicyDocument struct {
	Version   string           `json:"Version"`
	ID        string           `json:"Id,omitempty"`
	Statement []StatementEntry `json:"Statement"`
}

// StatementEntry is a single policy statement. Keys other than the ones below are rejected on
// parse, so a statement that is read and written back is never silently truncated.
type StatementEntry struct {
	Sid       string         `json:"Sid,omitempty"`
	Effect    Effect         `json:"Effect"`
	Principal Principal      `json:"Principal"`
	Action    *StringList    `json:"Action,omitempty"`
	NotAction *StringList    `json:"NotAction,omitempty"`
	Condition map[string]any `json:"Condition,omitempty"`
}

// StringList is a policy value that may be written either as a single string or as a list.
// It is marshalled back in the form it was read.
type StringList struct {
	Items  []string
	Scalar bool
}

func NewStringList(items ...string) StringList {
	return StringList{Items: append([]string(nil), items...)}
}

type PrincipalKind int

const (
	PrincipalKindInvalid PrincipalKind = iota
	PrincipalKindAWS
	PrincipalKindService
	PrincipalKindAnyone
)

func (k PrincipalKind) String() string {
	switch k {
	case PrincipalKindAWS:
		return "AWS"
	case PrincipalKindService:
		return "Service"
	case PrincipalKindAnyone:
		return "*"
	default:
		return "invalid"
	}
}

// Principal is either {"AWS": arns}, {"Service": names} or the literal "*". The kind is decided
// when the statement is parsed; any other shape fails the parse.
type Principal struct {
	Kind   PrincipalKind
	Values StringList
}

func AWSPrincipal(arns ...string) Principal {
	return Principal{Kind: PrincipalKindAWS, Values: NewStringList(arns...)}
}

func ServicePrincipal(name string) Principal {
	return Principal{Kind: PrincipalKindService, Values: StringList{Items: []string{name}, Scalar: true}}
}

// ParsePolicyDocument parses the policyText returned by ECR. An empty text is an empty policy.
func ParsePolicyDocument(text string) (PolicyDocument, error) {
	if strings.TrimSpace(text) == "" {
		return PolicyDocument{Version: ECRPolicyVersion}, nil
	}

	var doc PolicyDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return PolicyDocument{}, errors.Errorf("failed to parse policy document: %w", err)
	}

	return doc, nil
}

// JSON renders the document as policyText.
func (d PolicyDocument) JSON() (string, error) {
	if d.Statement == nil {
		d.Statement = make([]StatementEntry, 0)
	}

	serialized, err := json.Marshal(d)
	if err != nil {
		return "", errors.Wrap(err)
	}

	return string(serialized), nil
}

// statementFields has the fields of StatementEntry without its methods.
type statementFields StatementEntry

func (s *StatementEntry) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var fields statementFields
	if err := decoder.Decode(&fields); err != nil {
		if errors.Is(err, ErrInvalidStatementShape) {
			return err
		}
		return errors.Errorf("%w: %w", ErrInvalidStatementShape, err)
	}

	if fields.Principal.Kind == PrincipalKindInvalid {
		return errors.Errorf("%w: statement '%s' has no Principal", ErrInvalidStatementShape, fields.Sid)
	}
	if fields.Effect != EffectAllow && fields.Effect != EffectDeny {
		return errors.Errorf("%w: statement '%s' has unknown Effect '%s'", ErrInvalidStatementShape, fields.Sid, fields.Effect)
	}
	if fields.Action == nil && fields.NotAction == nil {
		return errors.Errorf("%w: statement '%s' has neither Action nor NotAction", ErrInvalidStatementShape, fields.Sid)
	}

	*s = StatementEntry(fields)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l.Scalar && len(l.Items) == 1 {
		return json.Marshal(l.Items[0])
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.Errorf("%w: null where a string or list of strings was expected", ErrInvalidStatementShape)
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{Items: []string{single}, Scalar: true}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Errorf("%w: expected a string or a list of strings: %w", ErrInvalidStatementShape, err)
	}

	*l = StringList{Items: items}
	return nil
}

func (p Principal) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PrincipalKindAnyone:
		return json.Marshal("*")
	case PrincipalKindAWS, PrincipalKindService:
		return json.Marshal(map[string]StringList{p.Kind.String(): p.Values})
	default:
		return nil, errors.Errorf("%w: cannot render principal of kind %s", ErrInvalidStatementShape, p.Kind)
	}
}

func (p *Principal) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.Errorf("%w: Principal is null", ErrInvalidStatementShape)
	}

	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		if literal != "*" {
			return errors.Errorf("%w: unsupported principal '%s'", ErrInvalidStatementShape, literal)
		}
		*p = Principal{Kind: PrincipalKindAnyone, Values: StringList{Items: []string{"*"}, Scalar: true}}
		return nil
	}

	var keyed map[string]StringList
	if err := json.Unmarshal(data, &keyed); err != nil {
		if errors.Is(err, ErrInvalidStatementShape) {
			return err
		}
		return errors.Errorf("%w: Principal must be an object or \"*\": %w", ErrInvalidStatementShape, err)
	}

	if len(keyed) != 1 {
		return errors.Errorf("%w: Principal must have exactly one key, got %d", ErrInvalidStatementShape, len(keyed))
	}

	for key, values := range keyed {
		switch key {
		case PrincipalKindAWS.String():
			*p = Principal{Kind: PrincipalKindAWS, Values: values}
		case PrincipalKindService.String():
			*p = Principal{Kind: PrincipalKindService, Values: values}
		default:
			return errors.Errorf("%w: unsupported principal type '%s'", ErrInvalidStatementShape, key)
		}
	}

	return nil
}
