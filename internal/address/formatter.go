package address

import (
	"context"
	"fmt"
)

// PrettyPrintAddress renders a valid address on one line. Invalid addresses
// return their *ValidationError.
func PrettyPrintAddress(addr *Address) (string, error) {
	if verr := Validate(addr); verr != nil {
		return "", verr
	}

	province := ""
	if addr.ProvinceOrState != nil {
		province = addr.ProvinceOrState.Name
	}

	return fmt.Sprintf("Type: %s - %s - %s - %s - %s",
		addr.AddressLineDetail.FormattedLineDetail(),
		addr.CityOrTown,
		province,
		*addr.PostalCode,
		addr.Country.Name,
	), nil
}

// Formatter pretty-prints batches of addresses to a Sink. A batch stops at
// the first record that fails; lines already emitted stay emitted.
type Formatter struct {
	sink Sink
}

func NewFormatter(sink Sink) *Formatter {
	return &Formatter{sink: sink}
}

// PrintAddressesByType emits every address whose type name equals typeName.
func (f *Formatter) PrintAddressesByType(
	ctx context.Context,
	addresses []*Address,
	typeName string,
) error {
	for _, addr := range addresses {
		if addr == nil || addr.Type == nil || addr.Type.Name != typeName {
			continue
		}
		if err := f.emit(ctx, addr); err != nil {
			return err
		}
	}
	return nil
}

// PrettyPrintAllAddresses emits every address.
func (f *Formatter) PrettyPrintAllAddresses(
	ctx context.Context,
	addresses []*Address,
) error {
	for _, addr := range addresses {
		if err := f.emit(ctx, addr); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) emit(ctx context.Context, addr *Address) error {
	line, err := PrettyPrintAddress(addr)
	if err != nil {
		return err
	}
	return f.sink.Emit(ctx, line)
}
