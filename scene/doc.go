// Package scene holds the presentation state around an epicycle series:
// the animation clock, the camera, the lock-on selection and the trail of
// recent tips. It polls the chain produced by the fourier package every step
// and never feeds anything back into it.
package scene
