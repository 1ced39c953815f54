// Package registry exposes the ciphers as named operations and chains them
// into pipelines.
//
// Every cipher contributes two operations, "<cipher>_encrypt" and
// "<cipher>_decrypt", each the Reverse of the other. Keys are always passed
// as strings; Caesar shifts and rail counts are parsed as decimal integers.
//
//	reg := registry.NewDefault()
//	ct, err := reg.Execute(ctx, "caesar_encrypt", "SECRET", "3")
//
// A Pipeline applies several operations in sequence, and Reverse builds the
// pipeline that undoes it:
//
//	p := &registry.Pipeline{Steps: []registry.Step{
//	    {Operation: "rail_fence_encrypt", Key: "3"},
//	    {Operation: "caesar_encrypt", Key: "7"},
//	}}
//	ct, _ := p.Execute(ctx, reg, "WEAREDISCOVERED")
//	back, _ := p.Reverse(reg)
//	pt, _ := back.Execute(ctx, reg, ct)
package registry
