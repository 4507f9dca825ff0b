package convolution

// KernelErr exposes the single-frame kernel lookup error to external tests.
func KernelErr(s Spec) error {
	_, err := kernelFor(s, 1)
	return err
}
