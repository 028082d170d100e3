package policymerger

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/samber/lo"
)

const (
	CrossAccountSid       = "Allow x-account access"
	ServiceAccessSid      = "omics workflow access"
	OmicsServicePrincipal = "omics.amazonaws.com"
)

var ErrNoAccounts = errors.NewSentinelError("at least one account is required")

// DefaultPullActions are the read-only ECR actions needed to pull an image.
func DefaultPullActions() []string {
	return []string{
		"ecr:BatchCheckLayerAvailability",
		"ecr:BatchGetImage",
		"ecr:GetDownloadUrlForLayer",
	}
}

func RootARN(accountID string) string {
	return "arn:aws:iam::" + accountID + ":root"
}

// Merger rewrites a repository policy so that it grants pull access to a list of accounts and to
// one service principal, keeping every unrelated statement. A Merger is never mutated after
// NewMerger returns and may be shared.
type Merger struct {
	crossAccountSid  string
	serviceSid       string
	servicePrincipal string
	pullActions      []string
}

type MergerOption func(*Merger)

func WithServicePrincipal(servicePrincipal string) MergerOption {
	return func(m *Merger) {
		m.servicePrincipal = servicePrincipal
	}
}

func WithPullActions(actions ...string) MergerOption {
	return func(m *Merger) {
		m.pullActions = append([]string(nil), actions...)
	}
}

func NewMerger(opts ...MergerOption) *Merger {
	m := &Merger{
		crossAccountSid:  CrossAccountSid,
		serviceSid:       ServiceAccessSid,
		servicePrincipal: OmicsServicePrincipal,
		pullActions:      DefaultPullActions(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Merger) CrossAccountStatement(accounts []string) StatementEntry {
	actions := NewStringList(m.pullActions...)
	return StatementEntry{
		Sid:       m.crossAccountSid,
		Effect:    EffectAllow,
		Principal: AWSPrincipal(lo.Map(accounts, func(account string, _ int) string { return RootARN(account) })...),
		Action:    &actions,
	}
}

func (m *Merger) ServiceStatement() StatementEntry {
	actions := NewStringList(m.pullActions...)
	return StatementEntry{
		Sid:       m.serviceSid,
		Effect:    EffectAllow,
		Principal: ServicePrincipal(m.servicePrincipal),
		Action:    &actions,
	}
}

// Merge returns the generated cross-account statement, the generated service statement and then
// the existing statements that neither of them replaces, in their original order, with exact
// duplicates removed. Duplicate account ids are collapsed, first occurrence wins.
func (m *Merger) Merge(existing []StatementEntry, accounts []string) ([]StatementEntry, error) {
	accounts = lo.Uniq(accounts)
	if len(accounts) == 0 {
		return nil, errors.Wrap(ErrNoAccounts)
	}

	merged := make([]StatementEntry, 0, len(existing)+2)
	merged = append(merged, m.CrossAccountStatement(accounts), m.ServiceStatement())

	for i, statement := range existing {
		if statement.Principal.Kind == PrincipalKindInvalid {
			return nil, errors.Errorf("%w: statement %d ('%s') has no valid Principal", ErrInvalidStatementShape, i, statement.Sid)
		}
		if m.isServiceStatement(statement) {
			continue
		}
		// ECR rejects duplicate Sids, so a cross-account statement from an earlier run is replaced.
		if statement.Sid == m.crossAccountSid {
			continue
		}
		merged = append(merged, statement)
	}

	return dedupStatements(merged), nil
}

// MergeDocument merges doc's statements and returns a new document. The ECR policy version is
// written unless doc already uses CurrentPolicyVersion, which kept conditions may depend on.
// doc is not modified.
func (m *Merger) MergeDocument(doc PolicyDocument, accounts []string) (PolicyDocument, error) {
	statements, err := m.Merge(doc.Statement, accounts)
	if err != nil {
		return PolicyDocument{}, errors.Wrap(err)
	}

	version := ECRPolicyVersion
	if doc.Version == CurrentPolicyVersion {
		version = CurrentPolicyVersion
	}

	return PolicyDocument{
		Version:   version,
		ID:        doc.ID,
		Statement: statements,
	}, nil
}

func (m *Merger) isServiceStatement(statement StatementEntry) bool {
	return statement.Principal.Kind == PrincipalKindService &&
		len(statement.Principal.Values.Items) == 1 &&
		statement.Principal.Values.Items[0] == m.servicePrincipal
}

func dedupStatements(statements []StatementEntry) []StatementEntry {
	unique := make([]StatementEntry, 0, len(statements))
	for _, statement := range statements {
		alreadyPresent := lo.ContainsBy(unique, func(kept StatementEntry) bool {
			return StatementsEqual(kept, statement)
		})
		if !alreadyPresent {
			unique = append(unique, statement)
		}
	}
	return unique
}

// StatementsEqual is deep structural equality; a nil list and an empty list are equal.
func StatementsEqual(a, b StatementEntry) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}
