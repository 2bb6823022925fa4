package value

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPolicyType   = errors.New("unknown policy type")
	ErrUnknownCustomerType = errors.New("unknown customer type")
)

type PolicyType string

const (
	PolicyTypeProperty  PolicyType = "property"
	PolicyTypeLiability PolicyType = "liability"
	PolicyTypeMarine    PolicyType = "marine"
	PolicyTypeCyber     PolicyType = "cyber"
	PolicyTypeAviation  PolicyType = "aviation"
)

func PolicyTypes() []PolicyType {
	return []PolicyType{
		PolicyTypeProperty,
		PolicyTypeLiability,
		PolicyTypeMarine,
		PolicyTypeCyber,
		PolicyTypeAviation,
	}
}

func ParsePolicyType(s string) (PolicyType, error) {
	p := PolicyType(strings.ToLower(strings.TrimSpace(s)))

	switch p {
	case PolicyTypeProperty, PolicyTypeLiability, PolicyTypeMarine, PolicyTypeCyber, PolicyTypeAviation:
		return p, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPolicyType)
	}
}

func (p PolicyType) String() string {
	return string(p)
}

type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeSME        CustomerType = "sme"
	CustomerTypeCorporate  CustomerType = "corporate"
)

func ParseCustomerType(s string) (CustomerType, error) {
	c := CustomerType(strings.ToLower(strings.TrimSpace(s)))

	switch c {
	case CustomerTypeIndividual, CustomerTypeSME, CustomerTypeCorporate:
		return c, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownCustomerType)
	}
}

func (c CustomerType) String() string {
	return string(c)
}
