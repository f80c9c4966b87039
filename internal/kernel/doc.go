// Package kernel provides float dot-product kernels between a strided dense
// buffer and the slot arrays of a sparse store.
//
// The implementation is selected once at init:
//   - Generic: scalar Go loop over active slots
//   - Accelerated: active slots are gathered into pooled scratch buffers and
//     reduced with github.com/viterin/vek (AVX2+FMA on x86-64)
//
// Set HASHVEC_KERNEL=generic or HASHVEC_KERNEL=accelerated to override the
// selection. An override naming an unavailable implementation is ignored.
package kernel
