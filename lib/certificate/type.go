// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package certificate

import (
	"fmt"

	"github.com/bureau-foundation/ledger/lib/record"
)

// Type is a certificate discriminator.
type Type uint8

const (
	TypeStakeRegistration Type = iota
	TypeStakeDeregistration
	TypeStakeDelegation
	TypePoolRegistration
	TypePoolRetirement
	TypeGenesisKeyDelegation
	TypeMoveInstantRewards
	TypeRegistrationDeposit
	TypeUnregistrationDeposit
	TypeVoteDelegation
	TypeStakeVoteDelegation
	TypeStakeRegistrationDelegation
	TypeVoteRegistrationDelegation
	TypeStakeVoteRegistrationDelegation
	TypeAuthCommitteeHot
	TypeResignCommitteeCold
	TypeRegistrationDrep
	TypeUnregistrationDrep
	TypeUpdateDrep
)

// typeNames are the labels used in projections and logs.
var typeNames = [...]string{
	TypeStakeRegistration:               "StakeRegistration",
	TypeStakeDeregistration:             "StakeDeRegistration",
	TypeStakeDelegation:                 "StakeDelegation",
	TypePoolRegistration:                "PoolRegistration",
	TypePoolRetirement:                  "PoolRetirement",
	TypeGenesisKeyDelegation:            "GenesisKeyDelegation",
	TypeMoveInstantRewards:              "MoveInstantRewards",
	TypeRegistrationDeposit:             "RegistrationDeposit",
	TypeUnregistrationDeposit:           "UnRegistrationDeposit",
	TypeVoteDelegation:                  "VoteDeleg",
	TypeStakeVoteDelegation:             "StakeVoteDeleg",
	TypeStakeRegistrationDelegation:     "StakeRegistrationDeleg",
	TypeVoteRegistrationDelegation:      "VoteRegistrationDeleg",
	TypeStakeVoteRegistrationDelegation: "StakeVoteRegistrationDeleg",
	TypeAuthCommitteeHot:                "AuthCommitteeHot",
	TypeResignCommitteeCold:             "ResignCommitteeCold",
	TypeRegistrationDrep:                "RegistrationDrep",
	TypeUnregistrationDrep:              "UnRegistrationDrep",
	TypeUpdateDrep:                      "UpdateDrep",
}

// Known reports whether t is in the ledger's certificate enumeration.
func (t Type) Known() bool {
	return int(t) < len(typeNames)
}

func (t Type) String() string {
	if t.Known() {
		return typeNames[t]
	}
	return fmt.Sprintf("CertificateType(%d)", uint8(t))
}

// Tag returns t as a record discriminator.
func (t Type) Tag() record.Tag {
	return record.Tag(t)
}

// ParseType returns the Type whose label is name.
func ParseType(name string) (Type, error) {
	for i, label := range typeNames {
		if label == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("certificate: unknown certificate type %q", name)
}
