package dao

import (
	"fmt"
	"reflect"
	"sort"
)

// Accessors maps screen names to their accessor implementations.
type Accessors map[string]Accessor

// accessors holds all registered DAOs.
var accessors = make(Accessors)

func init() {
	RegisterAccessor(&ProfileSID, new(Profile))
	RegisterAccessor(&MenuSID, new(Menu))
}

// RegisterAccessor adds an accessor to the global registry.
func RegisterAccessor(sid *ScreenID, accessor Accessor) {
	accessors[sid.String()] = accessor
}

// AccessorFor returns a new initialized accessor instance for the given screen.
func AccessorFor(f Factory, sid *ScreenID) (Accessor, error) {
	accessor, ok := accessors[sid.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, sid)
	}

	// Create new instance using reflection
	accessorType := reflect.TypeOf(accessor)
	if accessorType.Kind() == reflect.Ptr {
		accessorType = accessorType.Elem()
	}
	newInstance := reflect.New(accessorType).Interface()

	acc, ok := newInstance.(Accessor)
	if !ok {
		return nil, fmt.Errorf("failed to create accessor for: %s", sid)
	}

	acc.Init(f, sid)
	return acc, nil
}

// ListAccessors returns all registered screens, sorted by name.
func ListAccessors() []*ScreenID {
	sids := make([]*ScreenID, 0, len(accessors))
	for key := range accessors {
		sid := &ScreenID{}
		if err := sid.Parse(key); err == nil {
			sids = append(sids, sid)
		}
	}
	sort.Slice(sids, func(i, j int) bool {
		return sids[i].Name < sids[j].Name
	})
	return sids
}
