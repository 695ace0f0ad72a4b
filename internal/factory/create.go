package factory

import (
	"fmt"

	"github.com/fixkit/fixfactory/internal/catalog"
	"github.com/fixkit/fixfactory/internal/fix"
)

// resolve picks the catalog for a request. A nil catalog with a nil error
// means nothing is registered for beginString.
func (f *Factory) resolve(beginString, msgType string) (catalog.MessageFactory, error) {
	if target, ok := f.aliases[beginString]; ok && !fix.IsAdminMsgType(msgType) {
		r, ok := f.catalogs[target]
		if !ok {
			return nil, &AliasTargetMissingError{Transport: beginString, Target: target}
		}
		return r.factory, nil
	}

	if r, ok := f.catalogs[beginString]; ok {
		return r.factory, nil
	}
	return nil, nil
}

// Create returns the message for msgType under beginString. Unknown
// versions get a generic message carrying only MsgType(35). The only error
// is *AliasTargetMissingError.
func (f *Factory) Create(beginString, msgType string) (*fix.Message, error) {
	mf, err := f.resolve(beginString, msgType)
	if err != nil {
		return nil, err
	}
	if mf == nil {
		msg := fix.NewMessage()
		msg.Header.SetString(fix.TagMsgType, msgType)
		return msg, nil
	}
	return mf.Create(beginString, msgType), nil
}

// CreateGroup returns an empty instance of the group opened by counterTag
// within msgType. There is no generic fallback: versions without a catalog
// fail with *UnsupportedVersionError.
func (f *Factory) CreateGroup(beginString, msgType string, counterTag int) (*fix.Group, error) {
	mf, err := f.resolve(beginString, msgType)
	if err != nil {
		return nil, err
	}
	if mf == nil {
		return nil, &UnsupportedVersionError{BeginString: beginString}
	}

	g := mf.CreateGroup(beginString, msgType, counterTag)
	if g == nil {
		return nil, fmt.Errorf("%w: %s msg_type=%s counter_tag=%d", ErrUnknownGroup, beginString, msgType, counterTag)
	}
	return g, nil
}

// MessageName resolves msgType the way Create would and returns its name if
// the resolved catalog can describe it.
func (f *Factory) MessageName(beginString, msgType string) (string, bool) {
	mf, err := f.resolve(beginString, msgType)
	if err != nil || mf == nil {
		return "", false
	}
	d, ok := mf.(catalog.Describer)
	if !ok {
		return "", false
	}
	return d.MessageName(msgType)
}
